package models

type Subject struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Teacher struct {
	ID       int64  `json:"id"`
	FullName string `json:"fullName"`
}

type Class struct {
	ID    int64  `json:"id"`
	Label string `json:"label"`
}
