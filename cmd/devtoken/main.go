// Command devtoken mints access credentials for local development against a
// backend stub.  They are signed with the given secret, so the web tier only
// accepts them when JWT_VERIFY_SECRET matches or verification is off.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/iliyamo/car-rental-web/internal/model"
	"github.com/iliyamo/car-rental-web/internal/utils"
)

const devSecret = "dev-verify-secret-change-me"

type tokenOutput struct {
	Access    string    `json:"access"`
	ExpiresAt time.Time `json:"expires_at"`
	Cookie    string    `json:"cookie"`
}

func main() {
	username := flag.String("username", "budi", "username claim")
	email := flag.String("email", "budi@example.com", "email claim")
	role := flag.String("role", string(model.RoleCustomer), "role claim (admin|customer)")
	userID := flag.Int64("user-id", 1, "user_id claim")
	customerID := flag.Int64("customer-id", 0, "customer_id claim (0 omits it)")
	customerName := flag.String("customer-name", "", "customer_name claim")
	ttl := flag.Duration("ttl", time.Hour, "credential lifetime; negative values mint an expired credential")
	secret := flag.String("secret", envOr("JWT_VERIFY_SECRET", devSecret), "HMAC signing secret")
	asJSON := flag.Bool("json", false, "print JSON instead of the bare credential")
	flag.Parse()

	id := model.Identity{
		UserID:       *userID,
		Username:     *username,
		Email:        *email,
		Role:         model.Role(*role),
		CustomerName: *customerName,
	}
	if *customerID > 0 {
		id.CustomerID = customerID
	}

	tok, err := utils.NewAccessToken(*secret, id, *ttl)
	if err != nil {
		fmt.Fprintf(os.Stderr, "devtoken: %v\n", err)
		os.Exit(1)
	}
	if !*asJSON {
		fmt.Println(tok.Token)
		return
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(tokenOutput{
		Access:    tok.Token,
		ExpiresAt: tok.Exp,
		Cookie:    "access_token=" + tok.Token,
	})
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
