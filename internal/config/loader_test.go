package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/sleiderink/skifinder/internal/config"
	. "github.com/smartystreets/goconvey/convey"
)

func TestLoad(t *testing.T) {
	Convey("Given a clean environment", t, func() {
		unset := []string{
			"SKIFINDER_CONFIG", "SKIFINDER_ADDR", "SKIFINDER_BACKEND",
			"SKIFINDER_FETCH_TIMEOUT_MS", "SKIFINDER_MAX_RESULTS",
			"SKIFINDER_AIRTABLE_API_KEY", "SKIFINDER_BASEROW_TABLE_ID",
		}
		for _, v := range unset {
			_ = os.Unsetenv(v)
		}

		Convey("When loading with no overrides", func() {
			cfg, err := config.Load(context.Background())

			Convey("Then defaults apply", func() {
				So(err, ShouldBeNil)
				So(cfg.Addr, ShouldEqual, ":9080")
				So(cfg.Backend, ShouldEqual, config.BackendAirtable)
				So(cfg.FetchTimeoutMS, ShouldEqual, 10000)
				So(cfg.MaxResults, ShouldEqual, 3)
				So(cfg.PageSize, ShouldEqual, 100)
				So(cfg.AirtableTable, ShouldEqual, "Ski Finder")
			})
		})

		Convey("When environment variables override defaults", func() {
			_ = os.Setenv("SKIFINDER_ADDR", ":8080")
			_ = os.Setenv("SKIFINDER_BACKEND", "baserow")
			_ = os.Setenv("SKIFINDER_BASEROW_TABLE_ID", "688701")
			_ = os.Setenv("SKIFINDER_AIRTABLE_API_KEY", "key-from-env")
			defer func() {
				_ = os.Unsetenv("SKIFINDER_ADDR")
				_ = os.Unsetenv("SKIFINDER_BACKEND")
				_ = os.Unsetenv("SKIFINDER_BASEROW_TABLE_ID")
				_ = os.Unsetenv("SKIFINDER_AIRTABLE_API_KEY")
			}()

			cfg, err := config.Load(context.Background())

			Convey("Then env wins over defaults", func() {
				So(err, ShouldBeNil)
				So(cfg.Addr, ShouldEqual, ":8080")
				So(cfg.Backend, ShouldEqual, config.BackendBaserow)
				So(cfg.BaserowTableID, ShouldEqual, 688701)
				So(cfg.AirtableAPIKey, ShouldEqual, "key-from-env")
			})
		})

		Convey("When a YAML file is provided", func() {
			dir := t.TempDir()
			path := filepath.Join(dir, "config.yaml")
			yaml := "addr: \":7070\"\nbackend: baserow\nmax_results: 5\n"
			So(os.WriteFile(path, []byte(yaml), 0o600), ShouldBeNil)
			_ = os.Setenv("SKIFINDER_CONFIG", path)
			defer func() { _ = os.Unsetenv("SKIFINDER_CONFIG") }()

			Convey("Then file values layer over defaults", func() {
				cfg, err := config.Load(context.Background())
				So(err, ShouldBeNil)
				So(cfg.Addr, ShouldEqual, ":7070")
				So(cfg.Backend, ShouldEqual, config.BackendBaserow)
				So(cfg.MaxResults, ShouldEqual, 5)
			})

			Convey("And env still beats the file", func() {
				_ = os.Setenv("SKIFINDER_ADDR", ":6060")
				defer func() { _ = os.Unsetenv("SKIFINDER_ADDR") }()
				cfg, err := config.Load(context.Background())
				So(err, ShouldBeNil)
				So(cfg.Addr, ShouldEqual, ":6060")
			})
		})

		Convey("When the config file is missing", func() {
			_ = os.Setenv("SKIFINDER_CONFIG", "/nonexistent/config.yaml")
			defer func() { _ = os.Unsetenv("SKIFINDER_CONFIG") }()

			_, err := config.Load(context.Background())

			Convey("Then loading fails with a load error", func() {
				So(err, ShouldWrap, config.ErrLoadConfig)
			})
		})

		Convey("When validation fails", func() {
			Convey("Then an unknown backend is rejected", func() {
				_ = os.Setenv("SKIFINDER_BACKEND", "gsheet")
				defer func() { _ = os.Unsetenv("SKIFINDER_BACKEND") }()
				_, err := config.Load(context.Background())
				So(err, ShouldWrap, config.ErrInvalidConfig)
			})

			Convey("And a non-positive timeout is rejected", func() {
				_ = os.Setenv("SKIFINDER_FETCH_TIMEOUT_MS", "0")
				defer func() { _ = os.Unsetenv("SKIFINDER_FETCH_TIMEOUT_MS") }()
				_, err := config.Load(context.Background())
				So(err, ShouldWrap, config.ErrInvalidConfig)
			})

			Convey("And a non-positive result cap is rejected", func() {
				_ = os.Setenv("SKIFINDER_MAX_RESULTS", "-1")
				defer func() { _ = os.Unsetenv("SKIFINDER_MAX_RESULTS") }()
				_, err := config.Load(context.Background())
				So(err, ShouldWrap, config.ErrInvalidConfig)
			})
		})
	})
}
