package main

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path"

	"github.com/innoverse/admin/internal/file"
	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
)

type config struct {
	APIAddress string `json:"apiAddress"`
	APIToken   string `json:"apiToken"`
}

func getConfig() (*config, error) {
	adminHome, err := getAdminHome()
	if err != nil {
		return nil, errors.Wrap(err, "error finding inno-admin home")
	}
	adminConfigFile := path.Join(adminHome, "config")
	if !file.Exists(adminConfigFile) {
		return nil, errors.Errorf(
			"no configuration was found at %s; please use "+
				"`inno-admin login` to continue\n",
			adminConfigFile,
		)
	}

	configBytes, err := ioutil.ReadFile(adminConfigFile)
	if err != nil {
		return nil, errors.Wrapf(
			err,
			"error reading config file at %s",
			adminConfigFile,
		)
	}

	config := &config{}
	if err := json.Unmarshal(configBytes, config); err != nil {
		return nil, errors.Wrapf(
			err,
			"error parsing config file at %s",
			adminConfigFile,
		)
	}

	return config, nil
}

func saveConfig(config *config) error {
	adminHome, err := getAdminHome()
	if err != nil {
		return errors.Wrap(err, "error finding inno-admin home")
	}
	if _, err := os.Stat(adminHome); err != nil {
		if !os.IsNotExist(err) {
			return errors.Wrapf(
				err,
				"error checking for existence of inno-admin home at %s",
				adminHome,
			)
		}
		// The directory doesn't exist-- create it
		if err := os.MkdirAll(adminHome, 0755); err != nil {
			return errors.Wrapf(
				err,
				"error creating inno-admin home at %s",
				adminHome,
			)
		}
	}
	adminConfigFile := path.Join(adminHome, "config")

	configBytes, err := json.Marshal(config)
	if err != nil {
		return errors.Wrap(err, "error marshaling config")
	}
	if err :=
		ioutil.WriteFile(adminConfigFile, configBytes, 0600); err != nil {
		return errors.Wrapf(err, "error writing to %s", adminConfigFile)
	}
	return nil
}

func deleteConfig() error {
	adminHome, err := getAdminHome()
	if err != nil {
		return errors.Wrap(err, "error finding inno-admin home")
	}
	adminConfigFile := path.Join(adminHome, "config")

	if err := os.Remove(adminConfigFile); err != nil {
		return errors.Wrap(err, "error deleting configuration")
	}

	return nil
}

func getAdminHome() (string, error) {
	homeDir, err := homedir.Dir()
	if err != nil {
		return "", errors.Wrap(err, "error locating user's home directory")
	}

	return path.Join(homeDir, ".inno-admin"), nil
}
