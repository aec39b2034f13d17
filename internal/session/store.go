package session

// Store holds the client session: an opaque bearer token and a display
// name. Absence of a token means logged out; nothing else inspects the
// token. Absent values read back as "".
type Store interface {
	// SetSession persists both fields, overwriting whatever was there.
	SetSession(token, name string) error
	SetToken(token string) error
	SetName(name string) error
	Token() (string, error)
	Name() (string, error)
	// Clear removes both fields together.
	Clear() error
}

// Memory is a map-backed Store for tests and environments without a
// usable OS keychain.
type Memory struct {
	token string
	name  string
}

func NewMemory() *Memory { return &Memory{} }

func (m *Memory) SetSession(token, name string) error {
	m.token = token
	m.name = name
	return nil
}

func (m *Memory) SetToken(token string) error {
	m.token = token
	return nil
}

func (m *Memory) SetName(name string) error {
	m.name = name
	return nil
}

func (m *Memory) Token() (string, error) { return m.token, nil }
func (m *Memory) Name() (string, error)  { return m.name, nil }

func (m *Memory) Clear() error {
	m.token = ""
	m.name = ""
	return nil
}
