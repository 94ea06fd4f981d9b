//go:build windows

package fontstore

import (
	"io"
	"os"
	"path/filepath"
	"unsafe"

	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"

	"github.com/LiteObject/WindowsUtils/pkg/errors"
)

// fontsKeyPath is the HKLM key holding the installed-font entries.
const fontsKeyPath = `SOFTWARE\Microsoft\Windows NT\CurrentVersion\Fonts`

const (
	hwndBroadcast = 0xFFFF
	wmFontChange  = 0x001D
)

var (
	gdi32  = windows.NewLazySystemDLL("gdi32.dll")
	user32 = windows.NewLazySystemDLL("user32.dll")

	procAddFontResourceW = gdi32.NewProc("AddFontResourceW")
	procSendMessageW     = user32.NewProc("SendMessageW")
)

// systemStore is the real Windows font store: %WINDIR%\Fonts plus
// the HKLM Fonts registry key.
type systemStore struct {
	dir string
}

// NewPlatform returns the Windows system font store. An empty
// fontDir selects %WINDIR%\Fonts.
func NewPlatform(fontDir string) (Store, error) {
	if fontDir == "" {
		windir := os.Getenv("WINDIR")
		if windir == "" {
			return nil, errors.New(errors.ErrStoreUnavailable, "WINDIR environment variable is not set")
		}
		fontDir = filepath.Join(windir, "Fonts")
	}
	return &systemStore{dir: fontDir}, nil
}

func (s *systemStore) Dir() string { return s.dir }

func (s *systemStore) FileExists(name string) bool {
	_, err := os.Stat(filepath.Join(s.dir, name))
	return err == nil
}

func (s *systemStore) CopyIn(srcPath, name string) error {
	src, err := os.Open(srcPath)
	if err != nil {
		return errors.Wrapf(err, errors.ErrInvalidFont, "cannot open font file %s", srcPath)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return wrapStoreErr(err, "cannot create font file in font directory")
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return wrapStoreErr(err, "cannot copy font file into font directory")
	}
	return nil
}

func (s *systemStore) Remove(name string) error {
	if err := os.Remove(filepath.Join(s.dir, name)); err != nil {
		return wrapStoreErr(err, "cannot remove existing font file")
	}
	return nil
}

func (s *systemStore) SetEntry(name, value string) error {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, fontsKeyPath, registry.SET_VALUE)
	if err != nil {
		return wrapStoreErr(err, "cannot open font registry key for writing")
	}
	defer k.Close()

	if err := k.SetStringValue(name, value); err != nil {
		return wrapStoreErr(err, "cannot write font registry entry")
	}
	return nil
}

func (s *systemStore) LookupEntry(name string) (string, bool, error) {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, fontsKeyPath, registry.QUERY_VALUE)
	if err != nil {
		return "", false, errors.Wrap(err, errors.ErrStoreQuery, "cannot open font registry key")
	}
	defer k.Close()

	v, _, err := k.GetStringValue(name)
	if err == registry.ErrNotExist {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Wrap(err, errors.ErrStoreQuery, "cannot read font registry entry")
	}
	return v, true, nil
}

func (s *systemStore) Entries() (map[string]string, error) {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, fontsKeyPath, registry.QUERY_VALUE)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrStoreQuery, "cannot open font registry key")
	}
	defer k.Close()

	names, err := k.ReadValueNames(-1)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrStoreQuery, "cannot enumerate font registry entries")
	}

	entries := make(map[string]string, len(names))
	for _, name := range names {
		v, _, err := k.GetStringValue(name)
		if err != nil {
			// Non-string values exist under the key; skip them
			continue
		}
		entries[name] = v
	}
	return entries, nil
}

func (s *systemStore) AddResource(path string) error {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return errors.Wrap(err, errors.ErrInvalidFont, "font path is not valid UTF-16")
	}
	ret, _, callErr := procAddFontResourceW.Call(uintptr(unsafe.Pointer(p)))
	if ret == 0 {
		return errors.Wrapf(callErr, errors.ErrStoreWrite, "AddFontResourceW failed for %s", path)
	}
	return nil
}

func (s *systemStore) NotifyChanged() error {
	// Broadcast WM_FONTCHANGE so running applications re-enumerate
	_, _, _ = procSendMessageW.Call(hwndBroadcast, wmFontChange, 0, 0)
	return nil
}

// wrapStoreErr maps permission failures to the PERMISSION code so
// strategies can classify them as fatal for their path.
func wrapStoreErr(err error, msg string) error {
	if os.IsPermission(err) {
		return errors.Wrap(err, errors.ErrPermission, msg)
	}
	return errors.Wrap(err, errors.ErrStoreWrite, msg)
}
