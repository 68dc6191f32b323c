package config

import (
	"fmt"
	"log"
	"sync"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env    string `yaml:"env" env-default:"local" env-required:"true"`
	Listen struct {
		BindIP string `yaml:"bind_ip" env-default:"0.0.0.0"`
		Port   string `yaml:"port" env-default:"8080"`
	} `yaml:"listen"`
	ERP struct {
		Url       string  `yaml:"url" env-default:""`
		Database  string  `yaml:"database" env-default:""`
		ApiKey    string  `yaml:"api_key" env-default:""`
		RateLimit float64 `yaml:"rate_limit" env-default:"10"`
		Burst     int     `yaml:"burst" env-default:"20"`
	} `yaml:"erp"`
	Sale struct {
		// Shops scope every order lookup; orders outside these sales
		// channels are invisible regardless of caller.
		Shops           []int64  `yaml:"shops"`
		PageLimit       int      `yaml:"page_limit" env-default:"20"`
		StateExclude    []string `yaml:"state_exclude"`
		PrintableStates []string `yaml:"printable_states"`
		LastViewedLimit int      `yaml:"last_viewed_limit" env-default:"12"`
		LastViewedCap   int      `yaml:"last_viewed_cap" env-default:"60"`
	} `yaml:"sale"`
	SQL struct {
		Enabled  bool   `yaml:"enabled" env-default:"false"`
		Driver   string `yaml:"driver" env-default:"mysql"`
		HostName string `yaml:"hostname" env-default:"localhost"`
		UserName string `yaml:"username" env-default:"root"`
		Password string `yaml:"password" env-default:""`
		Database string `yaml:"database" env-default:""`
		Port     string `yaml:"port" env-default:"3306"`
		Prefix   string `yaml:"prefix" env-default:""`
	} `yaml:"sql"`
	Mongo struct {
		Enabled     bool   `yaml:"enabled" env-default:"false"`
		Host        string `yaml:"host" env-default:"localhost"`
		Port        string `yaml:"port" env-default:"27017"`
		User        string `yaml:"user" env-default:""`
		Password    string `yaml:"password" env-default:""`
		Database    string `yaml:"database" env-default:"saleportal"`
		ExpiredDays int    `yaml:"expired_days" env-default:"90"`
	} `yaml:"mongo"`
	Telegram struct {
		Enabled bool   `yaml:"enabled" env-default:"false"`
		BotName string `yaml:"bot_name" env-default:""`
		ApiKey  string `yaml:"api_key" env-default:""`
		AdminId string `yaml:"admin_id" env-default:""`
	} `yaml:"telegram"`
}

var instance *Config
var once sync.Once

func MustLoad(path string) *Config {
	var err error
	once.Do(func() {
		instance = &Config{}
		if err = cleanenv.ReadConfig(path, instance); err != nil {
			desc, _ := cleanenv.GetDescription(instance, nil)
			err = fmt.Errorf("%s; %s", err, desc)
			instance = nil
			log.Fatal(err)
		}
	})
	return instance
}
