// Package strsync exchanges translated strings between gettext PO catalogs
// and a flat JSON document used by external translation workflows.
//
// Export reads <dir>/<locale>/LC_MESSAGES/<domain>.po for every locale and
// produces a Document keyed by message id:
//
//	{
//	    "first": {
//	        "de": "erste",
//	        "en": ""
//	    }
//	}
//
// Import writes the document back. Each locale's catalog is rebuilt from
// the <domain>.pot template, so ids removed from the template disappear
// and new ones show up untranslated.
package strsync
