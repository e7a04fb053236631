/*
Package vfsh is a sandboxed shell over a virtual filesystem unpacked from an archive.

An archive (zip, tar, tar.gz, tar.zst or tar.lz4) is extracted into a private host
directory, the sandbox root. Every path a user types is first normalized into a
virtual absolute path below "/" and only then mapped onto the sandbox, so ".." can
never reach the host outside of it.

# Commands

	ls [path]            list a directory (default ".")
	cd [path]            change directory (default "/")
	cat <file>           print a UTF-8 text file
	chmod <file> <mode>  change permissions with an octal mode
	tree [path]          print the directory structure
	return               go back to "/"
	pwd                  print the current directory
	help                 list the commands
	exit                 end the session

# Usage

The Shell owns one Session and feeds it through the interpreter. Hosts (the CLI,
tests, other frontends) only deal with lines in and lines out.

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/aretw0/vfsh"
	)

	func main() {
		ctx := context.Background()

		sh, err := vfsh.Open(ctx, "filesystem.zip")
		if err != nil {
			log.Fatal(err)
		}
		defer sh.Close()

		for _, line := range []string{"ls", "cd папка1", "tree"} {
			res, err := sh.Exec(ctx, line)
			if err != nil {
				log.Fatal(err)
			}
			for _, l := range res.Lines {
				fmt.Println(l)
			}
		}
	}
*/
package vfsh
