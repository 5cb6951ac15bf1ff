package photos

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var ErrInvalidFormat = errors.New("invalid photo format")

// ToString converts []string to JSON string (safe for DB)
func ToString(photos []string) string {
	if len(photos) == 0 {
		return "[]"
	}
	data, _ := json.Marshal(photos)
	return string(data)
}

// FromString converts DB string back to []string
func FromString(s string) []string {
	if s == "" || s == "[]" {
		return []string{}
	}
	var photos []string
	if err := json.Unmarshal([]byte(s), &photos); err != nil {
		// Fallback: treat as comma-separated if invalid JSON
		return strings.Split(s, ",")
	}
	return photos
}

// Staged — декодированное фото, ещё не записанное на диск.
type Staged struct {
	Data []byte
	Ext  string
}

// Decode разбирает список data-URI строк. Ничего не пишет на диск, поэтому
// при обновлении офиса старые фото можно сносить только после успешного
// Decode новых.
func Decode(items []string) ([]Staged, error) {
	out := make([]Staged, 0, len(items))
	for _, item := range items {
		if !strings.HasPrefix(item, "data:image/") {
			return nil, ErrInvalidFormat
		}
		header, payload, ok := strings.Cut(item, ",")
		if !ok {
			return nil, ErrInvalidFormat
		}

		ext := "jpg"
		switch {
		case strings.Contains(header, "jpeg"), strings.Contains(header, "jpg"):
			ext = "jpg"
		case strings.Contains(header, "png"):
			ext = "png"
		case strings.Contains(header, "gif"):
			ext = "gif"
		}

		data, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return nil, ErrInvalidFormat
		}
		out = append(out, Staged{Data: data, Ext: ext})
	}
	return out, nil
}

// Save записывает декодированные фото в <root>/<officeID>/ и возвращает
// относительные пути для записи в Office.
func Save(root string, officeID int64, staged []Staged) ([]string, error) {
	dir := filepath.Join(root, fmt.Sprint(officeID))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(staged))
	for _, p := range staged {
		name := uuid.NewString() + "." + p.Ext
		full := filepath.Join(dir, name)
		if err := os.WriteFile(full, p.Data, 0o644); err != nil {
			return nil, err
		}
		paths = append(paths, filepath.ToSlash(full))
	}
	return paths, nil
}

// RemoveDir удаляет каталог фотографий офиса вместе с содержимым.
func RemoveDir(root string, officeID int64) error {
	return os.RemoveAll(filepath.Join(root, fmt.Sprint(officeID)))
}
