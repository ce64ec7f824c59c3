// Command example walks a form submission through the full pipeline:
// construction from POST-style values, transformation, validation, and the
// serialized projections.
//
// Run:
//
//	go run ./_example
package main

import (
	"fmt"
	"log"
	"net/url"

	"github.com/Gobd/formtree"
)

func main() {
	form := url.Values{
		"title":           {"  Привет, Мир!  "},
		"author[name]":    {"Alice"},
		"author[email]":   {"not-an-email"},
		"published":       {"31.12.2020"},
		"unexpected_junk": {"dropped"},
	}

	expected, err := formtree.ExpectedFromYAML([]byte(`
title: ""
author:
  name: ""
  email: ""
published: ""
`))
	if err != nil {
		log.Fatal(err)
	}

	n := formtree.FromForm(form, formtree.Expected(expected))

	fmt.Println("slug:", n.Get("title").SafeName().Value())

	n.Get("author").Validate().
		OnEmpty("name", "name is required")
	n.Get("author").Get("email").Validate().
		IsEmail().OnFalse("not a valid email address")
	n.Get("published").Validate().
		IsDate(true, "2006-01-02").OnFalse("unparseable date")

	if !n.Validate().IsOK() {
		fmt.Println("errors:", n.Errors())
	}

	body, err := n.AsJSON()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("json: ", string(body))
	fmt.Println("query:", n.Query())
	fmt.Println("sql:  ", n.AsSQL([]string{"title", "published"}, true))
}
