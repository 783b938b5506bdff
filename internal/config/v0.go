package config

const configVersionV0 = "0"

type configV0 struct {
	Version string `json:"version"` // required by vconfig-go
}
