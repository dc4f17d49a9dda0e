package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables
// (DUPECLEAN_*). It respects flags that have been explicitly set (changed
// map). Returns an error if any variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setStringsFromString("extensions", os.Getenv("DUPECLEAN_EXTENSIONS"), &cfg.Extensions)

	if err := s.setInt64FromString("min-size", os.Getenv("DUPECLEAN_MIN_SIZE"), &cfg.MinSize); err != nil {
		return err
	}
	if err := s.setInt64FromString("max-size", os.Getenv("DUPECLEAN_MAX_SIZE"), &cfg.MaxSize); err != nil {
		return err
	}

	s.setString("algorithm", os.Getenv("DUPECLEAN_ALGORITHM"), &cfg.Algorithm)
	if err := s.setIntFromString("block-size", os.Getenv("DUPECLEAN_BLOCK_SIZE"), &cfg.BlockSize); err != nil {
		return err
	}
	if err := s.setIntFromString("workers", os.Getenv("DUPECLEAN_WORKERS"), &cfg.Workers); err != nil {
		return err
	}

	s.setString("keep", os.Getenv("DUPECLEAN_KEEP"), &cfg.Keep)
	s.setString("mode", os.Getenv("DUPECLEAN_MODE"), &cfg.Mode)

	s.setBoolFromString("dry-run", os.Getenv("DUPECLEAN_DRY_RUN"), &cfg.DryRun)
	s.setString("trash-dir", os.Getenv("DUPECLEAN_TRASH_DIR"), &cfg.TrashDir)

	s.setString("report", os.Getenv("DUPECLEAN_REPORT"), &cfg.ReportPath)
	s.setBoolFromString("detailed", os.Getenv("DUPECLEAN_DETAILED"), &cfg.Detailed)
	s.setBoolFromString("verbose", os.Getenv("DUPECLEAN_VERBOSE"), &cfg.Verbose)

	return nil
}
