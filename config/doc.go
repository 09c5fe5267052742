// Package config loads the game settings from an optional .env file and
// BLACKJACK_* environment variables.
package config
