package http

import (
	"fmt"
	"net/http"
)

// Home serves the welcome text at the root path.
func Home(w http.ResponseWriter, r *http.Request) {
	fmt.Fprint(w, "Welcome to the Loan Application API")
}
