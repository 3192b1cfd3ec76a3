package websites

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"github.com/m04kA/SMC-SiteBookings/internal/domain"
)

// RandomTokenGenerator токен из криптографического генератора, алфавит base64url
type RandomTokenGenerator struct{}

// Generate возвращает токен длиной domain.AccessTokenLen
func (RandomTokenGenerator) Generate() (string, error) {
	// 3 байта дают 4 символа base64
	buf := make([]byte, domain.AccessTokenLen*3/4)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
