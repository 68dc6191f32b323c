package sl

import "log/slog"

func Err(err error) slog.Attr {
	return slog.String("error", err.Error())
}

func Module(name string) slog.Attr {
	return slog.String("module", name)
}

// Secret logs a value keeping only a short prefix visible.
func Secret(key, value string) slog.Attr {
	const visible = 4
	if len(value) > visible {
		value = value[:visible] + "***"
	}
	return slog.String(key, value)
}
