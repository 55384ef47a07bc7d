package validator

import "regexp"

// 簡易メール形式（RFC準拠ではない）
// ドメイン側の語文字はUnicodeの文字・数字も含む
var emailPattern = regexp.MustCompile(`^[a-z0-9]+[._]?[a-z0-9]+@[\p{L}\p{N}_]+-?[\p{L}\p{N}_]+\.[\p{L}\p{N}_]{2,3}$`)

// StoreとPersonで共通のメール形式チェック
func IsEmailLike(s string) bool {
	return emailPattern.MatchString(s)
}
