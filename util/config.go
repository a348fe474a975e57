package util

import (
	"time"

	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variable.
type Config struct {
	Environment       string        `mapstructure:"ENVIRONMENT"`
	AllowedOrigins    []string      `mapstructure:"ALLOWED_ORIGINS"`
	DBSource          string        `mapstructure:"DB_SOURCE"`
	MigrationURL      string        `mapstructure:"MIGRATION_URL"`
	RedisAddress      string        `mapstructure:"REDIS_ADDRESS"`
	RedisPassword     string        `mapstructure:"REDIS_PASSWORD"`
	HTTPServerAddress string        `mapstructure:"HTTP_SERVER_ADDRESS"`
	GeocoderBaseURL   string        `mapstructure:"GEOCODER_BASE_URL"`
	GeocoderTimeout   time.Duration `mapstructure:"GEOCODER_TIMEOUT"`

	// 仓库坐标（所有路线的起点和终点）
	DepotLatitude  float64 `mapstructure:"DEPOT_LATITUDE"`
	DepotLongitude float64 `mapstructure:"DEPOT_LONGITUDE"`

	// 批次调度参数
	BatchMaxWeightKg       float64       `mapstructure:"BATCH_MAX_WEIGHT_KG"`        // 硬性容量上限
	BatchMinAssignWeightKg float64       `mapstructure:"BATCH_MIN_ASSIGN_WEIGHT_KG"` // 可指派的最低重量
	MergeRadiusKm          float64       `mapstructure:"MERGE_RADIUS_KM"`            // 批次合并的质心距离阈值
	DispatchInterval       time.Duration `mapstructure:"DISPATCH_INTERVAL"`          // 调度周期
	ServiceDayBoundaryHour int           `mapstructure:"SERVICE_DAY_BOUNDARY_HOUR"`  // 服务日边界（小时）

	// 路线优化参数
	AverageSpeedKmh        float64 `mapstructure:"AVERAGE_SPEED_KMH"`
	FuelPriceCentsPerLiter int64   `mapstructure:"FUEL_PRICE_CENTS_PER_LITER"`
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")

	viper.AutomaticEnv()

	err = viper.ReadInConfig()
	if err != nil {
		return
	}

	err = viper.Unmarshal(&config)
	if err != nil {
		return
	}

	applyDefaults(&config)
	return
}

// applyDefaults 缺省的调度参数
func applyDefaults(config *Config) {
	if config.BatchMaxWeightKg <= 0 {
		config.BatchMaxWeightKg = 5000
	}
	if config.BatchMinAssignWeightKg <= 0 {
		config.BatchMinAssignWeightKg = 3500
	}
	if config.MergeRadiusKm <= 0 {
		config.MergeRadiusKm = 5.0
	}
	if config.DispatchInterval <= 0 {
		config.DispatchInterval = 15 * time.Second
	}
	if config.ServiceDayBoundaryHour <= 0 {
		config.ServiceDayBoundaryHour = 8
	}
	if config.AverageSpeedKmh <= 0 {
		config.AverageSpeedKmh = 40
	}
	if config.FuelPriceCentsPerLiter <= 0 {
		config.FuelPriceCentsPerLiter = 6500
	}
	if config.GeocoderTimeout <= 0 {
		config.GeocoderTimeout = 10 * time.Second
	}
}
