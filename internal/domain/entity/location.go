package entity

type State struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

type City struct {
	ID      int64  `json:"id"`
	StateID int64  `json:"state"`
	Name    string `json:"name"`
	Image   string `json:"image,omitempty"`
	Active  bool   `json:"active"`
}
