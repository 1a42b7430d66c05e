// Package orders issues human-readable references for submitted orders.
// References are diagnostic only; nothing is persisted.
package orders

import (
	"crypto/sha256"
	"encoding/base32"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/speps/go-hashids/v2"
)

type ReferenceGenerator struct {
	h *hashids.HashID
}

func NewReferenceGenerator(salt string) (*ReferenceGenerator, error) {
	data := hashids.NewData()
	data.Salt = salt
	data.MinLength = 8
	h, err := hashids.NewWithData(data)
	if err != nil {
		return nil, fmt.Errorf("init hashids: %w", err)
	}
	return &ReferenceGenerator{h: h}, nil
}

// Generate encodes the current time plus a random nonce, hashes the whole
// code, and pairs its tag with a fresh uuid prefix. Nearby timestamps share
// most of the raw code, so the tag must cover all of it, not a prefix.
func (g *ReferenceGenerator) Generate() string {
	nonce := int64(uuid.New().ID())
	code, err := g.h.EncodeInt64([]int64{time.Now().UnixNano(), nonce})
	if err != nil || code == "" {
		// EncodeInt64 only fails on negative inputs; keep a fallback anyway.
		code = strings.ReplaceAll(uuid.NewString(), "-", "")
	}

	sum := sha256.Sum256([]byte(code))
	tag := base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(sum[:])

	return fmt.Sprintf(
		"GRLLA-%s-%s",
		tag[:4],
		strings.ToUpper(uuid.NewString()[:4]),
	)
}
