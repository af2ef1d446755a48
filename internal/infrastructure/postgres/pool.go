package postgres

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"time"

	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Almacen-api/pkg/config"
)

// Parámetros del pool.
const (
	poolMaxConns       = 25
	poolMinConns       = 2
	poolConnLifetime   = time.Hour
	poolConnIdleTime   = 30 * time.Minute
	poolHealthInterval = time.Minute
)

// NewPool abre el pool de PostgreSQL del servicio. Con DATABASE_URL definido se
// usa tal cual (reescribiendo el host a su IPv4 si resuelve); si no, el DSN se
// arma desde los campos DB_*. El dial siempre prefiere IPv4: los contenedores
// del despliegue no enrutan IPv6 y el DNS de algunos proveedores devuelve solo
// registros AAAA por su resolver primario.
func NewPool(ctx context.Context, cfg config.DBConfig) (*pgxpool.Pool, error) {
	dsn := buildDSN(cfg)

	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse DSN: %w", err)
	}

	poolCfg.ConnConfig.DialFunc = dialIPv4
	poolCfg.MaxConns = poolMaxConns
	poolCfg.MinConns = poolMinConns
	poolCfg.MaxConnLifetime = poolConnLifetime
	poolCfg.MaxConnIdleTime = poolConnIdleTime
	poolCfg.HealthCheckPeriod = poolHealthInterval

	// Codec NUMERIC/DECIMAL <-> shopspring/decimal en cada conexión del pool.
	poolCfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("crear pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping DB: %w", err)
	}
	return pool, nil
}

func buildDSN(cfg config.DBConfig) string {
	if cfg.DatabaseURL != "" {
		return urlWithIPv4Host(cfg.DatabaseURL)
	}
	if ipv4, err := ipv4For(cfg.Host); err == nil {
		cfg.Host = ipv4
	}
	return cfg.DSN()
}

// dialIPv4 conecta por tcp4 cuando el host tiene dirección IPv4; si no resuelve,
// cae al dial estándar.
func dialIPv4(ctx context.Context, network, addr string) (net.Conn, error) {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return nil, err
	}
	dialer := &net.Dialer{}
	ipv4, err := ipv4For(host)
	if err != nil {
		return dialer.DialContext(ctx, network, addr)
	}
	return dialer.DialContext(ctx, "tcp4", net.JoinHostPort(ipv4, port))
}

// ipv4For resuelve host a una dirección IPv4. Primero el resolver del sistema;
// si este solo entrega AAAA, reintenta contra un DNS público.
func ipv4For(host string) (string, error) {
	if ip := net.ParseIP(host); ip != nil {
		if ip.To4() != nil {
			return host, nil
		}
		return "", fmt.Errorf("%s: sin dirección IPv4", host)
	}
	if ip, err := lookupA(host, nil); err == nil {
		return ip, nil
	}
	fallback := &net.Resolver{
		PreferGo: true,
		Dial: func(ctx context.Context, network, address string) (net.Conn, error) {
			d := net.Dialer{}
			return d.DialContext(ctx, "udp", "8.8.8.8:53")
		},
	}
	return lookupA(host, fallback)
}

func lookupA(host string, r *net.Resolver) (string, error) {
	var ips []net.IP
	var err error
	if r != nil {
		ips, err = r.LookupIP(context.Background(), "ip4", host)
	} else {
		ips, err = net.LookupIP(host)
	}
	if err != nil {
		return "", err
	}
	for _, ip := range ips {
		if ip.To4() != nil {
			return ip.String(), nil
		}
	}
	return "", fmt.Errorf("%s: sin registros A", host)
}

// urlWithIPv4Host reescribe el hostname de la connection string por su IPv4;
// si no resuelve, devuelve la URL original sin tocar.
func urlWithIPv4Host(databaseURL string) string {
	u, err := url.Parse(databaseURL)
	if err != nil {
		return databaseURL
	}
	port := u.Port()
	if port == "" {
		port = "5432"
	}
	ipv4, err := ipv4For(u.Hostname())
	if err != nil {
		return databaseURL
	}
	u.Host = net.JoinHostPort(ipv4, port)
	return u.String()
}
