package vectorizer

import (
	"regexp"
	"strings"
)

// tokenPattern 只保留长度 >= 2 的词元（字母/数字/下划线），
// 单字符词对区分商品内容几乎没有贡献。
var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}_][\p{L}\p{N}_]+`)

// tokenize 小写化并切分文本。
func tokenize(text string) []string {
	return tokenPattern.FindAllString(strings.ToLower(text), -1)
}
