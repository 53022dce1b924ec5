package main

var server srv

func main() {
	server.loadConfig()
	server.loadLogger()
	server.loadDatabase()
	server.loadRedis()
	server.loadCache()
	server.loadRepos()
	server.loadDomains()
	server.loadRouter()
	server.startServer()
}
