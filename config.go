package prisma

// Config configures a Store
type Config struct {
	// Debug enables debug logging
	Debug bool `json:"debug"`
	// AllowDestructive must be set for destructive operations (project resets) to build.
	// It is off by default so production paths cannot truncate data by accident.
	AllowDestructive bool `json:"allowDestructive"`
	// Logger overrides the default zap logger
	Logger Logger `json:"-"`
}
