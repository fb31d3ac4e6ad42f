// Package config provides configuration management for patternlab.
//
// A single AppConfig describes the company the demos build, the defaults
// applied to new employees, the shared person pool, logging, metrics and demo
// pacing.
//
// # Sources
//
// Values are layered, later sources winning:
//
//  1. NewAppConfig defaults
//  2. the YAML file passed to Load, after ${VAR_NAME} expansion
//  3. PATTERNLAB_* environment variables, with dots in keys replaced by
//     underscores (PATTERNLAB_POOL_PERSON_CAPACITY=8)
//
// # Usage
//
//	cfg, err := config.Load("patternlab.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	log, err := logger.New(cfg.LoggerConfig())
//	facade, err := organization.NewFacade(cfg.OrganizationSettings(), log)
//
// Save and Marshal write the YAML form, which Load reads back unchanged.
package config
