package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"github.com/albertmmateo-blip/entretelas-api/internal/domain/finanzas"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env
// y opcionalmente archivo).
type Config struct {
	App     AppConfig
	DB      DBConfig
	HTTP    HTTPConfig
	Tarifas TarifasConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env    string // development, staging, production
	Name   string
	Tienda string // nombre comercial, aparece en los PDF
}

// DBConfig configuración de PostgreSQL. Si DatabaseURL no está vacío, se usa
// como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si
// no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN construye el connection string de PostgreSQL con URL encoding para
// caracteres especiales en la contraseña.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// TarifasConfig las constantes de negocio, sobreescribibles por entorno.
type TarifasConfig struct {
	IVAVenta    string
	IVACompraRE string
	ParteTaller string
}

// Tarifas convierte la configuración a las tarifas del dominio. Un valor
// ilegible cae al valor por defecto vigente.
func (c TarifasConfig) Tarifas() finanzas.Tarifas {
	t := finanzas.TarifasPorDefecto()
	if d, err := decimal.NewFromString(c.IVAVenta); err == nil && d.IsPositive() {
		t.IVAVenta = d
	}
	if d, err := decimal.NewFromString(c.IVACompraRE); err == nil && d.IsPositive() {
		t.IVACompraRE = d
	}
	if d, err := decimal.NewFromString(c.ParteTaller); err == nil && d.IsPositive() {
		t.ParteTaller = d
	}
	return t
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde
// archivo). Las env vars tienen prioridad: APP_ENV, DB_HOST, HTTP_PORT, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:    getString(v, "APP_ENV", "development"),
			Name:   getString(v, "APP_NAME", "entretelas-api"),
			Tienda: getString(v, "APP_TIENDA", "Entretelas"),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "entretelas"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Tarifas: TarifasConfig{
			IVAVenta:    getString(v, "TARIFA_IVA_VENTA", ""),
			IVACompraRE: getString(v, "TARIFA_IVA_COMPRA_RE", ""),
			ParteTaller: getString(v, "TARIFA_PARTE_TALLER", ""),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
