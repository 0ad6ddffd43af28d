package session

import (
	"fmt"
	"strconv"

	"github.com/dmitrymomot/sessionkv/pkg/kv"
)

// Key builds the fully-qualified store key for a caller-supplied sub-key:
// [keySpace, id] followed by the normalized sub-key parts. A sub-key is
// either a single part or a sequence of parts ([]any, []string or kv.Key).
// Pure; the namespace prefix guarantees no operation can reach outside this
// session's partition.
func (s *Session) Key(subKey any) (kv.Key, error) {
	parts, err := normalizeSubKey(subKey)
	if err != nil {
		return nil, err
	}

	return kv.Key{s.keySpace, s.id}.Append(parts...), nil
}

// prefix is the two-part namespace every key of this session lives under.
func (s *Session) prefix() kv.Key {
	return kv.Key{s.keySpace, s.id}
}

// normalizeSubKey turns a singleton-or-sequence sub-key into a part slice.
func normalizeSubKey(subKey any) ([]string, error) {
	switch k := subKey.(type) {
	case kv.Key:
		return k, nil
	case []string:
		return k, nil
	case []any:
		parts := make([]string, len(k))
		for i, p := range k {
			part, err := normalizePart(p)
			if err != nil {
				return nil, err
			}
			parts[i] = part
		}
		return parts, nil
	default:
		part, err := normalizePart(subKey)
		if err != nil {
			return nil, err
		}
		return []string{part}, nil
	}
}

// normalizePart converts a single key part to its canonical string form.
func normalizePart(part any) (string, error) {
	switch p := part.(type) {
	case string:
		return p, nil
	case []byte:
		return string(p), nil
	case bool:
		return strconv.FormatBool(p), nil
	case int:
		return strconv.FormatInt(int64(p), 10), nil
	case int32:
		return strconv.FormatInt(int64(p), 10), nil
	case int64:
		return strconv.FormatInt(p, 10), nil
	case uint:
		return strconv.FormatUint(uint64(p), 10), nil
	case uint32:
		return strconv.FormatUint(uint64(p), 10), nil
	case uint64:
		return strconv.FormatUint(p, 10), nil
	case float64:
		return strconv.FormatFloat(p, 'g', -1, 64), nil
	case fmt.Stringer:
		return p.String(), nil
	default:
		return "", fmt.Errorf("%w: %T", ErrInvalidKeyPart, part)
	}
}
