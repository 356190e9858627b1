package notify

import (
	"fmt"
	"io"

	"github.com/dilshat/lead-store/service/dto"
)

// Printer renders notices as single lines, the terminal stand-in for a toast.
func Printer(w io.Writer) func(dto.Notice) {
	return func(n dto.Notice) {
		marker := "*"
		if n.Destructive {
			marker = "!"
		}
		fmt.Fprintf(w, "[%s] %s: %s\n", marker, n.Title, n.Description)
	}
}
