// Package main signs a development session token from a JSON principal,
// printing the compact token and a ready-to-paste cookie header.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/foodfairhq/fairtrack/internal/service"
)

func main() {
	secret := flag.String("s", os.Getenv("ACCESS_TOKEN_SECRET"), "token signing secret")
	principal := flag.String("p", `{"email":"dev@localhost"}`, "JSON principal to embed as claims")
	flag.Parse()

	if *secret == "" {
		fmt.Fprintln(os.Stderr, "a signing secret is required (-s or ACCESS_TOKEN_SECRET)")
		os.Exit(1)
	}

	token, err := signToken(*secret, *principal)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tokengen: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(token)
	fmt.Printf("Cookie: token=%s\n", token)
}

// signToken parses the principal JSON and signs it as session claims.
func signToken(secret, principalJSON string) (string, error) {
	var principal map[string]any
	if err := json.Unmarshal([]byte(principalJSON), &principal); err != nil {
		return "", fmt.Errorf("parse principal: %w", err)
	}
	return service.NewTokenService(secret).Issue(principal)
}
