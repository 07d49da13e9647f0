package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle           = "app_title"
	KeyCheckingConnection = "checking_connection"
	KeyNoInternetTitle    = "no_internet_title"
	KeyNoInternetBody     = "no_internet_body"
	KeyRetry              = "retry"
	KeyLoading            = "loading"
	KeyLoaded             = "loaded"
	KeyPullToRetry        = "pull_to_retry"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the active language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// initializeTexts populates the translation tables
func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:           "MindVora",
		KeyCheckingConnection: "Checking connection...",
		KeyNoInternetTitle:    "No internet connection",
		KeyNoInternetBody:     "MindVora needs a network connection.\nCheck your Wi-Fi or mobile data and try again.",
		KeyRetry:              "Retry",
		KeyLoading:            "Loading",
		KeyLoaded:             "Ready",
		KeyPullToRetry:        "Pull down to retry",
	}

	l.texts["hi"] = map[string]string{
		KeyAppTitle:           "MindVora",
		KeyCheckingConnection: "कनेक्शन जाँचा जा रहा है...",
		KeyNoInternetTitle:    "इंटरनेट कनेक्शन नहीं है",
		KeyNoInternetBody:     "MindVora को नेटवर्क कनेक्शन चाहिए।\nअपना Wi-Fi या मोबाइल डेटा जाँचें और फिर से कोशिश करें।",
		KeyRetry:              "फिर से कोशिश करें",
		KeyLoading:            "लोड हो रहा है",
		KeyLoaded:             "तैयार",
		KeyPullToRetry:        "फिर से जाँचने के लिए नीचे खींचें",
	}
}
