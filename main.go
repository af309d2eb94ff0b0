// Package main Buecheria library API.
//
// @title           Buecheria Library API
// @version         1.0
// @description     Authors, books, members and loans of the Buecheria library.
// @BasePath        /
// @schemes         http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description  Use:  Bearer <JWT>
package main

import "github.com/stefa-ie/buecheria-library-app/cmd"

func main() {
	cmd.Execute()
}
