package materials

import (
	"errors"
	"strings"
)

var ErrBadRef = errors.New("пустая ссылка на материал")

// Ref структурная ссылка на материал. На проводе она по-прежнему
// кодируется составной строкой "{id}:{категория}:{название}", но в
// бизнес-логике ходит только Ref: авторитетен исключительно MaterialID,
// остальные сегменты — дублирование для отображения и отладки.
type Ref struct {
	MaterialID  string
	CategoryTag string
	DisplayName string
}

// ParseRef декодирует составной ключ. Первый сегмент до ':' — id
// материала, последний — отображаемое имя, всё между ними — тег
// категории (сам тег может содержать ':').
func ParseRef(key string) (Ref, error) {
	parts := strings.Split(key, ":")
	if len(parts) == 0 || parts[0] == "" {
		return Ref{}, ErrBadRef
	}
	r := Ref{MaterialID: parts[0]}
	if len(parts) >= 3 {
		r.CategoryTag = strings.Join(parts[1:len(parts)-1], ":")
		r.DisplayName = parts[len(parts)-1]
	} else if len(parts) == 2 {
		r.DisplayName = parts[1]
	}
	return r, nil
}

func (r Ref) String() string {
	return r.MaterialID + ":" + r.CategoryTag + ":" + r.DisplayName
}
