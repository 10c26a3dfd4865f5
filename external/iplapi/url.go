package iplapi

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/valyala/bytebufferpool"
)

type param struct {
	key   string
	value string
}

// Params collects query parameters. Zero values are dropped so callers can pass optional filters as-is.
type Params []param

func (p Params) Int(key string, v int) Params {
	if v == 0 {
		return p
	}
	return append(p, param{key: key, value: strconv.Itoa(v)})
}

func (p Params) Int64(key string, v int64) Params {
	if v == 0 {
		return p
	}
	return append(p, param{key: key, value: strconv.FormatInt(v, 10)})
}

// OptionalInt keeps zero, which is a meaningful filter for fields like over.
func (p Params) OptionalInt(key string, v *int) Params {
	if v == nil {
		return p
	}
	return append(p, param{key: key, value: strconv.Itoa(*v)})
}

func (p Params) String(key, v string) Params {
	v = strings.TrimSpace(v)
	if v == "" {
		return p
	}
	return append(p, param{key: key, value: v})
}

func buildURL(baseURL, path string, params Params) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	_, _ = buf.WriteString(strings.TrimSuffix(baseURL, "/"))
	if !strings.HasPrefix(path, "/") {
		_ = buf.WriteByte('/')
	}
	_, _ = buf.WriteString(path)

	for i, p := range params {
		if i == 0 {
			_ = buf.WriteByte('?')
		} else {
			_ = buf.WriteByte('&')
		}
		_, _ = buf.WriteString(url.QueryEscape(p.key))
		_ = buf.WriteByte('=')
		_, _ = buf.WriteString(url.QueryEscape(p.value))
	}

	return buf.String()
}

func idPath(prefix string, id int64, suffix string) string {
	return prefix + "/" + strconv.FormatInt(id, 10) + suffix
}
