package config

import "fmt"

type CloudinaryConfig struct {
	CloudName    string `mapstructure:"cloud_name"`
	APIKey       string `mapstructure:"api_key"`
	APISecret    string `mapstructure:"api_secret"`
	UploadFolder string `mapstructure:"upload_folder"`
	BaseURL      string `mapstructure:"base_url"`
}

// APIBaseURL returns the account-scoped Cloudinary API root.
func (c CloudinaryConfig) APIBaseURL() string {
	base := c.BaseURL
	if base == "" {
		base = "https://api.cloudinary.com/v1_1"
	}
	return fmt.Sprintf("%s/%s", base, c.CloudName)
}
