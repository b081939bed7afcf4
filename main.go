/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/vocalog/diary-api/cmd"

// @title           Voice Diary API
// @version         0.1.0
// @description     A local-first voice diary backend: episodes collect recorded shards, each shard is enriched with transcription and emotion analysis, curated into highlights, and published to a personal feed
// @contact.name    API Support
// @contact.url     https://github.com/vocalog/diary-api
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:8080
// @BasePath        /
// @schemes         http
func main() {
	cmd.Execute()
}
