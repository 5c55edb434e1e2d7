package model

import "strings"

type Language string

const (
	English Language = "english"
	Spanish Language = "spanish"
	French  Language = "french"
	German  Language = "german"
)

const DefaultLanguage = English

var SupportedLanguages = []Language{English, Spanish, French, German}

// ParseLanguage 将请求中的语言参数规范化，未知或为空时回退到英语
func ParseLanguage(s string) Language {
	lang := Language(strings.ToLower(strings.TrimSpace(s)))
	for _, l := range SupportedLanguages {
		if l == lang {
			return l
		}
	}
	return DefaultLanguage
}

func (l Language) String() string {
	return string(l)
}
