package config

// ConfigBackend abstracts where persisted config values live. Keys are
// dotted names such as "server.port".
type ConfigBackend interface {
	GetString(key string) (val string, ok bool, err error)
	GetInt(key string) (val int, ok bool, err error)
	GetBool(key string) (val bool, ok bool, err error)
	SetString(key, val string) error
	SetInt(key string, val int) error
	SetBool(key string, val bool) error
	Delete(key string) error
}
