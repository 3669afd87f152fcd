//go:build !windows

package platform

// Init is a no-op outside Windows; console prompts need no process setup.
func Init() (func(), error) {
	return func() {}, nil
}
