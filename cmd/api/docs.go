package main

// @title           Assistant API
// @version         1.0
// @description     API do assistente conversacional: autenticação, conversas, mensagens e feedback

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Cabeçalho de autenticação JWT usando o esquema Bearer. Exemplo: "Bearer {token}"
