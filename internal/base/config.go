package base

import (
	"encoding/json"
	"errors"
	"os"
	"time"

	. "github.com/aviodesk/charterops/internal/interfaces/config"
	"github.com/aviodesk/charterops/internal/interfaces/global"
	"github.com/aviodesk/charterops/internal/interfaces/log"
	"github.com/aviodesk/charterops/internal/utils"
)

func readConfig(logger log.LoggerInterface) (*Config, *ValidResult) {
	config := DefaultConfig()

	if bytes, err := os.ReadFile(*global.ConfigFilePath); err != nil {
		// First run, write out the defaults so they can be edited
		if err := saveConfig(config); err != nil {
			return nil, ValidFailWith(errors.New("fail to save configuration file while creating configuration file"), err)
		}
		logger.InfoF("Configuration file %s did not exist and has been created with defaults", *global.ConfigFilePath)
		if result := config.CheckValid(logger); result.IsFail() {
			return nil, result
		}
		return config, ValidPass()
	} else if err := json.Unmarshal(bytes, config); err != nil {
		return nil, ValidFailWith(errors.New("the configuration file does not contain valid JSON"), err)
	} else if result := config.CheckValid(logger); result.IsFail() {
		return nil, result
	}
	return config, ValidPass()
}

func saveConfig(config *Config) error {
	if writer, err := os.OpenFile(*global.ConfigFilePath, os.O_WRONLY|os.O_CREATE, global.DefaultFilePermissions); err != nil {
		return err
	} else if data, err := json.MarshalIndent(config, "", "\t"); err != nil {
		return err
	} else if _, err = writer.Write(data); err != nil {
		return err
	} else if err := writer.Close(); err != nil {
		return err
	}
	return nil
}

type Manager struct {
	config *utils.CachedValue[Config]
	logger log.LoggerInterface
}

func NewManager(logger log.LoggerInterface) *Manager {
	manager := &Manager{
		logger: logger,
	}
	manager.config = utils.NewCachedValue(time.Hour, manager.getConfig)
	return manager
}

func (manager *Manager) getConfig() *Config {
	if config, result := readConfig(manager.logger); result.IsFail() {
		manager.logger.Fatal(result.Error().Error())
		panic(result.OriginErr())
	} else {
		return config
	}
}

func (manager *Manager) Config() *Config {
	return manager.config.GetValue()
}

func (manager *Manager) SaveConfig() error {
	return saveConfig(manager.Config())
}
