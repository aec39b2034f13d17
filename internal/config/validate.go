package config

import (
	"errors"
	"net"
	"net/url"
)

func Validate(cfg Config) error {
	var errs []string

	u, err := url.Parse(cfg.API.BaseURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		errs = append(errs, "api.base_url must be an http(s) URL")
	}
	if cfg.API.TimeoutSeconds <= 0 {
		errs = append(errs, "api.timeout_seconds must be > 0")
	}

	if cfg.Callback.Enabled {
		if _, _, err := net.SplitHostPort(cfg.Callback.Listen); err != nil {
			errs = append(errs, "callback.listen must be host:port")
		}
	}

	if len(errs) > 0 {
		return errors.New("config validation failed:\n- " + joinLines(errs))
	}
	return nil
}

func joinLines(lines []string) string {
	out := ""
	for i, s := range lines {
		if i > 0 {
			out += "\n- "
		}
		out += s
	}
	return out
}
