package locale

import "fmt"

func unknownName(kind string, code uint16) string {
	return fmt.Sprintf("%s(%d)", kind, code)
}
