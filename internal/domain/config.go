package domain

type Config struct {
	SeasonDir         string `mapstructure:"season_dir"`
	DataDir           string `mapstructure:"data_dir"`
	HideAdultContent  bool   `mapstructure:"hide_adult_content"`
	DiscordWebhookURL string `mapstructure:"discord_webhook_url"`
	LogLevel          string `mapstructure:"log_level"`
}
