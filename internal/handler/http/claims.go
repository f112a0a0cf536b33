package http

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
)

// tenantIDFromRequest extracts the tenant_id claim from the verified token.
func tenantIDFromRequest(r *http.Request) (string, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", false
	}
	tenantID, ok := claims["tenant_id"].(string)
	if !ok || tenantID == "" {
		return "", false
	}
	return tenantID, true
}

// employeeIDFromRequest extracts the employee_id claim from the verified token.
func employeeIDFromRequest(r *http.Request) (string, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", false
	}
	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", false
	}
	return employeeID, true
}
