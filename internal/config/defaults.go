package config

const (
	defaultDataDir               = "~/.local/share/marquee"
	defaultLogDir                = "~/.local/share/marquee/logs"
	defaultAPIBind               = "127.0.0.1:5556"
	defaultTMDBBaseURL           = "https://api.themoviedb.org/3"
	defaultTMDBLanguage          = "zh-CN"
	defaultTMDBOriginalLanguage  = "en-US"
	defaultOMDbBaseURL           = "https://www.omdbapi.com/"
	defaultRecentDays            = 7
	defaultThrottleMillis        = 500
	defaultRequestTimeoutSeconds = 10
	defaultLogFormat             = "console"
	defaultLogLevel              = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
			LogDir:  defaultLogDir,
			APIBind: defaultAPIBind,
		},
		TMDB: TMDB{
			BaseURL:          defaultTMDBBaseURL,
			Language:         defaultTMDBLanguage,
			OriginalLanguage: defaultTMDBOriginalLanguage,
		},
		OMDb: OMDb{
			Enabled: true,
			BaseURL: defaultOMDbBaseURL,
		},
		Enrichment: Enrichment{
			RecentDays:            defaultRecentDays,
			ThrottleMillis:        defaultThrottleMillis,
			RequestTimeoutSeconds: defaultRequestTimeoutSeconds,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
