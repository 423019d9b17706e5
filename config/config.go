package config

import (
	"github.com/spf13/viper"
)

const (
	DBURL = "database.postgres"

	Port        = "server.port"
	Secret      = "server.secret"
	PlatformFee = "server.platform_fee"

	RedisAddress  = "redis.address"
	RedisPassword = "redis.password"
	RedisDB       = "redis.db"

	TwilioAccountSID = "twilio.account_sid"
	TwilioAuthToken  = "twilio.auth_token"
	TwilioURL        = "twilio.url"
	TwilioFrom       = "twilio.from"

	RazorpayKeyID     = "razorpay.key_id"
	RazorpayKeySecret = "razorpay.key_secret"
	RazorpayURL       = "razorpay.url"

	CloudinaryURL          = "cloudinary.url"
	CloudinaryCloudName    = "cloudinary.cloud_name"
	CloudinaryUploadPreset = "cloudinary.upload_preset"
)

func init() {
	viper.AutomaticEnv()
	viper.SetDefault(Port, "9000")
	viper.SetDefault(PlatformFee, 0)
	viper.SetDefault(TwilioURL, "https://api.twilio.com/2010-04-01/Accounts")
	viper.SetDefault(RazorpayURL, "https://api.razorpay.com/v1")
	viper.SetDefault(CloudinaryURL, "https://api.cloudinary.com/v1_1")
}
