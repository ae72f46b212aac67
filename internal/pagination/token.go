package pagination

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"channel_syncer/internal/domain"
)

const tokenSeparator = "|"

var ErrMalformedToken = errors.New("pagination: malformed continuation token")

// EncodeToken builds the opaque "<lastItemId>|<offsetOrCursor>" token.
func EncodeToken(lastID, cursor string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(lastID + tokenSeparator + cursor))
}

func DecodeToken(token string) (lastID, cursor string, err error) {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}
	lastID, cursor, ok := strings.Cut(string(raw), tokenSeparator)
	if !ok {
		return "", "", ErrMalformedToken
	}
	return lastID, cursor, nil
}

// ParseToken decodes token, falling back to the first page when it is empty or
// malformed so stale bookmarks keep working.
func ParseToken(token string) (lastID, cursor string) {
	if token == "" {
		return "", ""
	}
	lastID, cursor, err := DecodeToken(token)
	if err != nil {
		return "", ""
	}
	return lastID, cursor
}

// Slice pages over an ordered id list using offset tokens. A token whose last
// id no longer sits just before its offset is treated as stale and restarts
// from the first page.
func Slice(ids []string, pageSize int, token string) domain.Page[string] {
	offset := 0
	if lastID, cursor := ParseToken(token); cursor != "" {
		n, err := strconv.Atoi(cursor)
		if err == nil && n > 0 && n <= len(ids) && ids[n-1] == lastID {
			offset = n
		}
	}

	end := len(ids)
	if pageSize > 0 && offset+pageSize < end {
		end = offset + pageSize
	}

	page := domain.Page[string]{
		Items:      append([]string(nil), ids[offset:end]...),
		TotalCount: len(ids),
	}
	if end < len(ids) {
		next := EncodeToken(ids[end-1], strconv.Itoa(end))
		page.NextCursor = &next
	}
	return page
}
