package config

type SMTP struct {
	Host     string
	Port     string
	User     string
	Password string
}

func (s SMTP) Addr() string {
	return s.Host + ":" + s.Port
}
