package cfg

import (
	"io"
	"io/ioutil"

	"github.com/pelletier/go-toml"
)

type Config struct {
	HTTPListenAddr      string `toml:"http_server_listen_addr"`
	GithubAPIURL        string `toml:"github_api_url"`
	GithubAPIToken      string `toml:"github_api_token"`
	PollIntervalSeconds int    `toml:"poll_interval_seconds"`
	EventsPerPage       int    `toml:"events_per_page"`
	FilterQuery         string `toml:"filter_query"`
	LogFormat           string `toml:"log_format"`
	LogLevel            string `toml:"log_level"`
	LogTimeKey          string `toml:"log_time_key"`
}

func Load(reader io.Reader) (*Config, error) {
	var result Config

	data, err := ioutil.ReadAll(reader)
	if err != nil {
		return nil, err
	}

	if err := toml.Unmarshal(data, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *Config) Marshal(writer io.Writer) error {
	return toml.NewEncoder(writer).Encode(r)
}
