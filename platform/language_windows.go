//go:build windows

package platform

import "golang.org/x/sys/windows"

// UserLanguage returns the user's first preferred UI language as a locale
// name such as "ru-RU", or "" if it cannot be determined.
func UserLanguage() string {
	langs, err := windows.GetUserPreferredUILanguages(windows.MUI_LANGUAGE_NAME)
	if err != nil || len(langs) == 0 {
		return ""
	}
	return langs[0]
}
