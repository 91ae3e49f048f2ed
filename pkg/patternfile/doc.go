// Package patternfile loads argument patterns from YAML documents.
//
// A document declares the parameter list of a callable and a
// go-playground/validator tag per parameter:
//
//	name: signup
//	params:
//	  - name: email
//	  - name: age
//	    default: "18"
//	  - name: tags
//	    kind: var_positional
//	rules:
//	  email: required,email
//	  age: numeric
//	  tags: dive,alpha
//
// Parameter kinds are positional (the default), keyword_only,
// var_positional and var_keyword. Signature and Pattern turn the document
// into values accepted by argsv.New and argsv.Validate.
package patternfile
