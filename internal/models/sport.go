package models

import "fmt"

type Sport string

const (
	SportBasketball Sport = "basketball"
	SportBaseball   Sport = "baseball"
	SportSoccer     Sport = "soccer"
)

func ParseSport(s string) (Sport, error) {
	switch Sport(s) {
	case SportBasketball, SportBaseball, SportSoccer:
		return Sport(s), nil
	}
	return "", fmt.Errorf("unsupported sport %q", s)
}

// Sports lists every supported sport.
func Sports() []Sport {
	return []Sport{SportBasketball, SportBaseball, SportSoccer}
}
