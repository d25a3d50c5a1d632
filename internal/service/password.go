package service

import "golang.org/x/crypto/bcrypt"

// PasswordHasher 对密码做 bcrypt 单向加盐哈希。
// cost 从配置注入 (测试里可以调低加速)，不要在这里读全局配置。
type PasswordHasher struct {
	cost int
}

func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &PasswordHasher{cost: cost}
}

func (h *PasswordHasher) Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify 比对走 bcrypt 自带的常数时间比较。
// 库里存的哈希格式损坏时 bcrypt 也会报错，统一按不匹配处理 (fail closed)。
func (h *PasswordHasher) Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
