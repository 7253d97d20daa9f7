package localsystem

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// translations maps language code -> message key -> template.
// Loaded from embedded JSON at init time.
var translations map[string]map[string]string

func init() {
	if err := json.Unmarshal(translationsJSON, &translations); err != nil {
		panic("localsystem: failed to parse embedded translations: " + err.Error())
	}
}

// Package-level language state used by T() and TF().
var (
	currentLanguage = "en"
	langMu          sync.RWMutex
)

// SetLanguage sets the language used by T() and TF(). Unknown codes fall
// back to English at lookup time.
func SetLanguage(lang string) {
	langMu.Lock()
	currentLanguage = lang
	langMu.Unlock()
}

// GetLanguage returns the current message language code.
func GetLanguage() string {
	langMu.RLock()
	defer langMu.RUnlock()
	return currentLanguage
}

// T translates a message key using the current language.
func T(key string) string {
	return lookupTranslation(key, GetLanguage())
}

// TF translates a key and substitutes {0}, {1}, ... with args.
//
// Example:
//
//	TF("error.platform", "OpenProcess", 5, "Access is denied.")
//	// "{0} failed with error {1}: {2}" → "OpenProcess failed with error 5: Access is denied."
func TF(key string, args ...any) string {
	template := T(key)
	for i, arg := range args {
		placeholder := fmt.Sprintf("{%d}", i)
		template = strings.ReplaceAll(template, placeholder, fmt.Sprint(arg))
	}
	return template
}

// lookupTranslation finds the translation for a key with fallback chain.
// Order: translations[lang] -> translations["en"] -> key
func lookupTranslation(key, lang string) string {
	if langMap, ok := translations[lang]; ok {
		if val, ok := langMap[key]; ok {
			return val
		}
	}
	if lang != "en" {
		if val, ok := translations["en"][key]; ok {
			return val
		}
	}
	return key
}

// MatchLanguage maps a locale identifier such as "ru-RU", "ru_RU.UTF-8" or
// "EN" to a supported language code. It returns "" when nothing matches.
func MatchLanguage(locale string) string {
	tag := strings.ToLower(strings.TrimSpace(locale))
	if i := strings.IndexAny(tag, "-_.@"); i >= 0 {
		tag = tag[:i]
	}
	if _, ok := translations[tag]; ok && tag != "" {
		return tag
	}
	return ""
}

// LanguageInfo holds the code and display name for a language.
type LanguageInfo struct {
	Code string // e.g., "en", "ru"
	Name string // e.g., "English", "Русский"
}

// GetAvailableLanguages returns all available languages sorted with English first,
// then the rest alphabetically by display name.
func GetAvailableLanguages() []LanguageInfo {
	var langs []LanguageInfo
	for code, trans := range translations {
		name := code
		if n, ok := trans["_name"]; ok {
			name = n
		}
		langs = append(langs, LanguageInfo{Code: code, Name: name})
	}

	sort.Slice(langs, func(i, j int) bool {
		if langs[i].Code == "en" {
			return true
		}
		if langs[j].Code == "en" {
			return false
		}
		return langs[i].Name < langs[j].Name
	})

	return langs
}
