package main

import (
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/goodnatureofminers/spectre-netstats/internal/netstats/reward"
	"github.com/goodnatureofminers/spectre-netstats/internal/netstats/stats"
)

type config struct {
	Nodes          []string      `long:"node" env:"NETSTATS_NODES" env-delim:"," description:"node endpoint as [name=]host:port, repeatable" validate:"min=1,dive,required"`
	ConnectTimeout time.Duration `long:"connect-timeout" env:"NETSTATS_CONNECT_TIMEOUT" description:"time to wait for the node channel to become ready" default:"2s" validate:"gt=0"`
	Permits        int64         `long:"permits" env:"NETSTATS_PERMITS" description:"requests allowed in flight per node" default:"190" validate:"gt=0"`
	PermitTimeout  time.Duration `long:"permit-timeout" env:"NETSTATS_PERMIT_TIMEOUT" description:"reclaim permits of unanswered requests after this long, 0 disables" default:"0s" validate:"gte=0"`

	WindowSize       int    `long:"window-size" env:"NETSTATS_WINDOW_SIZE" description:"blocks kept per node" default:"30" validate:"gte=2"`
	CadenceStrategy  string `long:"cadence-strategy" env:"NETSTATS_CADENCE_STRATEGY" description:"authoritative (header timestamps) or detection (progress advances)" default:"authoritative" validate:"oneof=authoritative detection"`
	DetectionHistory int    `long:"detection-history" env:"NETSTATS_DETECTION_HISTORY" description:"intervals kept by the detection strategy" default:"300" validate:"gt=0"`

	SubscribeTemplates bool          `long:"subscribe-templates" env:"NETSTATS_SUBSCRIBE_TEMPLATES" description:"subscribe to new block template notifications"`
	NoTemplateRefresh  bool          `long:"no-template-refresh" env:"NETSTATS_NO_TEMPLATE_REFRESH" description:"do not request dag info on template notifications"`
	RefreshInterval    time.Duration `long:"refresh-interval" env:"NETSTATS_REFRESH_INTERVAL" description:"dag info and coin supply refresh period, negative disables" default:"30s"`
	ReconnectDelay     time.Duration `long:"reconnect-delay" env:"NETSTATS_RECONNECT_DELAY" description:"initial reconnect backoff" default:"1s" validate:"gt=0"`
	ReconnectMaxDelay  time.Duration `long:"reconnect-max-delay" env:"NETSTATS_RECONNECT_MAX_DELAY" description:"reconnect backoff cap" default:"1m" validate:"gtefield=ReconnectDelay"`

	RewardTable string `long:"reward-table" env:"NETSTATS_REWARD_TABLE" description:"JSON breakpoint file, the built-in deflationary schedule is used when empty" validate:"omitempty,file"`

	ClickhouseDSN string `long:"clickhouse-dsn" env:"NETSTATS_CLICKHOUSE_DSN" description:"ClickHouse DSN, history is disabled when empty" validate:"omitempty,url"`

	RedisAddr     string        `long:"redis-addr" env:"NETSTATS_REDIS_ADDR" description:"Redis address, snapshot store is disabled when empty" validate:"omitempty,hostname_port"`
	RedisUsername string        `long:"redis-username" env:"NETSTATS_REDIS_USERNAME" description:"Redis username"`
	RedisPassword string        `long:"redis-password" env:"NETSTATS_REDIS_PASSWORD" description:"Redis password"`
	RedisDB       int           `long:"redis-db" env:"NETSTATS_REDIS_DB" description:"Redis database" default:"0" validate:"gte=0"`
	RedisTTL      time.Duration `long:"redis-ttl" env:"NETSTATS_REDIS_TTL" description:"snapshot expiry in Redis" default:"10m" validate:"gte=0"`

	PublishInterval time.Duration `long:"publish-interval" env:"NETSTATS_PUBLISH_INTERVAL" description:"snapshot publication period" default:"5s" validate:"gt=0"`
	HTTPAddr        string        `long:"http-addr" env:"NETSTATS_HTTP_ADDR" description:"API and metrics listen address" default:":8080" validate:"required"`
}

var errValidation = errors.New("invalid configuration")

var configValidator = validator.New(validator.WithRequiredStructEnabled())

func (c config) validate() error {
	err := configValidator.Struct(c)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	errs := []error{errValidation}
	for _, fe := range fieldErrs {
		errs = append(errs, fmt.Errorf("%s: value %v fails %q", fe.Namespace(), fe.Value(), fe.Tag()))
	}
	return errors.Join(errs...)
}

func (c config) cadence() (stats.Cadence, error) {
	if stats.Strategy(c.CadenceStrategy) == stats.StrategyDetection {
		return stats.NewDetectionCadence(c.DetectionHistory), nil
	}
	return stats.NewCadence(stats.Strategy(c.CadenceStrategy))
}

func (c config) schedule() (*reward.Schedule, error) {
	if c.RewardTable != "" {
		return reward.LoadFile(c.RewardTable)
	}
	return reward.Deflationary(reward.DefaultDeflationaryParams)
}

type endpoint struct {
	Name string
	Addr string
}

// parseEndpoints accepts "host:port" or "name=host:port". Names default to the address
// and must be unique.
func parseEndpoints(raw []string) ([]endpoint, error) {
	seen := make(map[string]struct{}, len(raw))
	endpoints := make([]endpoint, 0, len(raw))
	for _, item := range raw {
		item = strings.TrimSpace(item)
		name, addr, named := strings.Cut(item, "=")
		if !named {
			name, addr = item, item
		}
		name, addr = strings.TrimSpace(name), strings.TrimSpace(addr)
		if name == "" {
			return nil, fmt.Errorf("node %q: empty name", item)
		}
		if _, _, err := net.SplitHostPort(addr); err != nil {
			return nil, fmt.Errorf("node %q: %w", item, err)
		}
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("node %q: duplicate name %q", item, name)
		}
		seen[name] = struct{}{}
		endpoints = append(endpoints, endpoint{Name: name, Addr: addr})
	}
	return endpoints, nil
}
