/*
Package lexrt is a small runtime support layer for generated lexical scanners.

A scanner generator translates pattern rules into a scan function; lexrt
provides everything such a scan function expects from its environment:
the shared scan state (current token text and length, position counters,
the bound input source) and two overridable entry points — a default driver
loop and a default end-of-input continuation hook. Package structure is
as follows:

■ driver: Package driver implements the default top-level driver loop and
hook constructors for multi-source scanning sessions.

■ scanner: Package scanner adapts real tokenizers (text/scanner, and
lexmachine in sub-package lexmach) to the scan-function contract, for
testing scanners and for programs which do not generate their own.

The base package contains the scan state and the hook types which are used
throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lexrt
