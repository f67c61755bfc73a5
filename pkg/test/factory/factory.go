package factory

import (
	"time"

	fab "github.com/Goldziher/fabricator"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// NewUser builds a user instance with fabricated field values. Unless the
// caller supplies one, EncryptedPassword is a real bcrypt digest of
// "12345678" so login tests can authenticate against it.
func NewUser[T any](customData ...map[string]any) T {
	base := map[string]any{
		"UUID":      uuid.New(),
		"CreatedAt": time.Now().UTC(),
		"UpdatedAt": time.Now().UTC(),
	}

	merged := mergeData(base, customData)

	if _, exists := merged["EncryptedPassword"]; !exists {
		encryptedPassword, _ := bcrypt.GenerateFromPassword([]byte("12345678"), bcrypt.DefaultCost)
		merged["EncryptedPassword"] = string(encryptedPassword)
	}

	return fab.New(*new(T)).Build(merged)
}

func NewTodo[T any](customData ...map[string]any) T {
	base := map[string]any{
		"UUID":      uuid.New(),
		"Completed": false,
		"CreatedAt": time.Now().UTC(),
		"UpdatedAt": time.Now().UTC(),
	}

	return fab.New(*new(T)).Build(mergeData(base, customData))
}

func mergeData(base map[string]any, customData []map[string]any) map[string]any {
	merged := map[string]any{}

	for key, value := range base {
		merged[key] = value
	}

	for _, data := range customData {
		for key, value := range data {
			merged[key] = value
		}
	}

	return merged
}
