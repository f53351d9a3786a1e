// Package ruleset loads field rules from YAML and applies them to records
// through a validation.Session.
//
// A rule file lists fields in evaluation order, each with its ordered rules:
//
//	separator: "||"        # optional
//	fields:
//	  - name: id
//	    rules:
//	      - rule: required
//	        message: Please enter an ID.
//	      - rule: 'match||[1-9]\d{3}'
//	        message: Please enter a valid ID.
//	  - name: nickname
//	    alias: nick
//	    optional: true     # skipped when the record has no such field
//	    rules:
//	      - rule: max||20
//	        message: Nicknames are limited to 20 characters.
//
// Records are plain JSON or YAML objects decoded with ParseRecord or LoadRecord.
package ruleset
