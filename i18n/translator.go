package i18n

import (
	"sync"

	"golang.org/x/text/language"
)

// Translator retrieves localized messages for result codes.
// data provides optional metadata to embed in the message.
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

var messages = map[string]map[string]string{
	"en": {
		"ok":                        "ok",
		"invalid_arg":               "invalid argument",
		"failure":                   "internal failure",
		"malformed_uri":             "malformed URI",
		"empty_host":                "empty host",
		"invalid_scheme":            "invalid scheme",
		"invalid_port":              "invalid port number",
		"invalid_ipv4_address":      "invalid IPv4 address",
		"invalid_ipv6_address":      "invalid IPv6 address",
		"invalid_domain_character":  "invalid domain character",
		"invalid_character":         "invalid character or UTF-8 encoding",
		"relative_url_without_base": "relative URL without a base",
		"overflow":                  "numeric or size overflow",

		"relative_url_with_cannot_be_a_base_base":       "relative URL with a cannot-be-a-base base",
		"cannot_set_port_with_file_like_scheme":         "cannot set a port on a file-like URL",
		"cannot_set_username_with_non_relative_scheme":  "cannot set a username on this URL",
		"cannot_set_password_with_non_relative_scheme":  "cannot set a password on this URL",
		"cannot_set_host_with_non_relative_scheme":      "cannot set a host on a non-relative URL",
		"cannot_set_host_port_with_non_relative_scheme": "cannot set host and port on a non-relative URL",
		"cannot_set_port_with_non_relative_scheme":      "cannot set a port on a URL without a host",
		"cannot_set_path_with_non_relative_scheme":      "cannot set a path on a non-relative URL",
	},
	"ja": {
		"ok":                        "成功",
		"invalid_arg":               "引数が不正です",
		"failure":                   "内部エラー",
		"malformed_uri":             "URIの形式が不正です",
		"empty_host":                "ホストが空です",
		"invalid_scheme":            "スキームが不正です",
		"invalid_port":              "ポート番号が不正です",
		"invalid_ipv4_address":      "IPv4アドレスが不正です",
		"invalid_ipv6_address":      "IPv6アドレスが不正です",
		"invalid_domain_character":  "ドメインに使用できない文字が含まれています",
		"invalid_character":         "不正な文字またはUTF-8エンコーディングです",
		"relative_url_without_base": "ベースのない相対URLです",
		"overflow":                  "数値またはサイズが上限を超えています",

		"relative_url_with_cannot_be_a_base_base":       "ベースにできないURLに対する相対URLです",
		"cannot_set_port_with_file_like_scheme":         "fileスキームにはポートを設定できません",
		"cannot_set_username_with_non_relative_scheme":  "このURLにはユーザー名を設定できません",
		"cannot_set_password_with_non_relative_scheme":  "このURLにはパスワードを設定できません",
		"cannot_set_host_with_non_relative_scheme":      "非相対URLにはホストを設定できません",
		"cannot_set_host_port_with_non_relative_scheme": "非相対URLにはホストとポートを設定できません",
		"cannot_set_port_with_non_relative_scheme":      "ホストのないURLにはポートを設定できません",
		"cannot_set_path_with_non_relative_scheme":      "非相対URLにはパスを設定できません",
	},
}

func (t dictTranslator) Message(code string, data map[string]string) string {
	if msg, ok := messages[t.lang][code]; ok {
		return msg
	}
	return code
}

var (
	mu                sync.RWMutex
	currentTranslator Translator = dictTranslator{lang: "en"}

	supported = []language.Tag{language.English, language.Japanese}
	matcher   = language.NewMatcher(supported)
)

// SetLanguage switches the built-in Translator to the closest supported
// language for a BCP 47 tag ("ja", "ja-JP", "en-US", ...). Unknown or
// malformed tags fall back to English.
func SetLanguage(lang string) {
	tag, err := language.Parse(lang)
	code := "en"
	if err == nil {
		if _, idx, conf := matcher.Match(tag); conf != language.No && supported[idx] == language.Japanese {
			code = "ja"
		}
	}
	mu.Lock()
	currentTranslator = dictTranslator{lang: code}
	mu.Unlock()
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		tr = dictTranslator{lang: "en"}
	}
	mu.Lock()
	currentTranslator = tr
	mu.Unlock()
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string {
	mu.RLock()
	tr := currentTranslator
	mu.RUnlock()
	return tr.Message(code, data)
}
