package config

type config struct {
	Server  server
	Mysql   mysql
	Redis   redis
	Minio   minio
	Elastic elastic
	Jwt     jwtConf
}

type server struct {
	Addr        string
	CorsOrigins []string
}

type mysql struct {
	Addr     string
	Database string
	Username string
	Password string
	Charset  string
}

type redis struct {
	Addr     string
	Password string
	DB       int
}

type minio struct {
	Endpoint   string
	AccessKey  string
	SecretKey  string
	UseSSL     bool
	PublicHost string
}

type elastic struct {
	Addr string
}

type jwtConf struct {
	AccessSecret      string
	RefreshSecret     string
	AccessExpireMin   int
	RefreshExpireHour int
}
