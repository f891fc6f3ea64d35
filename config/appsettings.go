package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

//Data : config data
type Data struct {
	AppPort              string        `mapstructure:"appPort" yaml:"appPort,omitempty"`
	ServiceName          string        `mapstructure:"serviceName" yaml:"serviceName,omitempty"`
	BasePath             string        `mapstructure:"basePath" yaml:"basePath,omitempty"`
	AggregationAPIURL    string        `mapstructure:"aggregationApiUrl" yaml:"aggregationApiUrl,omitempty"`
	AggregationAPIKey    string        `mapstructure:"aggregationApiKey" yaml:"aggregationApiKey,omitempty"`
	SentryDSN            string        `mapstructure:"sentryDsn" yaml:"sentryDsn,omitempty"`
	RequestTimeout       time.Duration `mapstructure:"requestTimeout" yaml:"requestTimeout,omitempty"`
	ChainRequestDelay    int           `mapstructure:"chainRequestDelay" yaml:"chainRequestDelay,omitempty"`
	PriceBatchDelay      int           `mapstructure:"priceBatchDelay" yaml:"priceBatchDelay,omitempty"`
	MetadataRequestDelay int           `mapstructure:"metadataRequestDelay" yaml:"metadataRequestDelay,omitempty"`
	MinimumAssetValue    float64       `mapstructure:"minimumAssetValue" yaml:"minimumAssetValue,omitempty"`
	DefaultSlippage      int           `mapstructure:"defaultSlippage" yaml:"defaultSlippage,omitempty"`
	ExpireCacheDuration  time.Duration `mapstructure:"expireCacheDuration" yaml:"expireCacheDuration,omitempty"`
	PurgeCacheInterval   time.Duration `mapstructure:"purgeCacheInterval" yaml:"purgeCacheInterval,omitempty"`
	SessionIdleTimeout   time.Duration `mapstructure:"sessionIdleTimeout" yaml:"sessionIdleTimeout,omitempty"`
}

//Init : initialize data
func (c *Data) Init(configDir string) {

	dir, dirErr := os.Getwd()
	if dirErr != nil {
		log.Printf("Cannot set default input/output directory to the current working directory >> %s", dirErr)
	}

	viper.SetEnvPrefix("cs") // Prefix all env variables with CS (Crypto Sweep)
	viper.AutomaticEnv()
	viper.BindEnv("appPort")
	viper.BindEnv("aggregationApiUrl")
	viper.BindEnv("aggregationApiKey")
	viper.BindEnv("sentryDsn")

	viper.SetDefault("appPort", "9000")
	viper.SetDefault("serviceName", "crypto-sweep")
	viper.SetDefault("basePath", "/api/v1")
	viper.SetDefault("aggregationApiUrl", "https://api.1inch.dev")
	viper.SetDefault("requestTimeout", 60)
	viper.SetDefault("chainRequestDelay", 250)
	viper.SetDefault("priceBatchDelay", 250)
	viper.SetDefault("metadataRequestDelay", 100)
	viper.SetDefault("minimumAssetValue", 1)
	viper.SetDefault("defaultSlippage", 1)
	viper.SetDefault("expireCacheDuration", 400)
	viper.SetDefault("purgeCacheInterval", 60)
	viper.SetDefault("sessionIdleTimeout", 1800)

	viper.SetConfigName("config")
	viper.AddConfigPath("../")
	viper.AddConfigPath(dir)
	viper.AddConfigPath(configDir)
	viper.WatchConfig()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			panic(fmt.Errorf("\n fatal error: could not read from config file >>%s ", err))
		}
	}

	viper.OnConfigChange(func(e fsnotify.Event) {
		if err := viper.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				panic(fmt.Errorf("\n fatal error: could not read from config file >>%s ", err))
			}
		}
		viper.Unmarshal(c)
		fmt.Println("Config file changed:", e.Name)
	})

	viper.Unmarshal(c)
	log.Println("App configuration loaded successfully!")
}
